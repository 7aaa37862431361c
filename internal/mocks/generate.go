package mocks

//go:generate mockery --name TicketStore --srcpkg github.com/turnio-lab/project-turnio/internal/core/storage --output ./storage --outpkg storagemocks
//go:generate mockery --name LedgerStore --srcpkg github.com/turnio-lab/project-turnio/internal/core/storage --output ./storage --outpkg storagemocks
//go:generate mockery --name DisplayStore --srcpkg github.com/turnio-lab/project-turnio/internal/core/storage --output ./storage --outpkg storagemocks
//go:generate mockery --name Feed --srcpkg github.com/turnio-lab/project-turnio/internal/intake --output ./intake --outpkg intakemocks
