package postgres

// SQL statements for the ticket and intake_ledger tables.

const (
	ticketColumns = `
		id, category, sequence, label, state, window_name,
		holder_name, document, category_label, created_at, called_at
	`

	// queryOpenTicketCount implements the core deduplication invariant check:
	// how many of the document's tickets today are still open.
	queryOpenTicketCount = `
		SELECT COUNT(*)
		FROM tickets
		WHERE document = $1
		  AND day = CURRENT_DATE
		  AND state IN ('waiting', 'in_service')
	`

	// queryNextSequence computes max+1 within (category, today). Runs inside
	// the serializable issue transaction; the unique (category, day, sequence)
	// index is the structural backstop against phantom reads.
	queryNextSequence = `
		SELECT COALESCE(MAX(sequence), 0) + 1
		FROM tickets
		WHERE category = $1
		  AND day = CURRENT_DATE
	`

	queryInsertTicket = `
		INSERT INTO tickets (category, sequence, label, state, holder_name, document, category_label)
		VALUES ($1, $2, $3, 'waiting', $4, $5, $6)
		RETURNING id, created_at
	`

	// queryAssignLedgerEntry closes the ledger entry in the same transaction
	// as the ticket insert.
	queryAssignLedgerEntry = `
		UPDATE intake_ledger
		SET processed = TRUE, processed_at = NOW(), assigned_ticket = $1, pass_id = $2
		WHERE id = $3
	`

	queryWindowBusyCount = `
		SELECT COUNT(*)
		FROM tickets
		WHERE window_name = $1
		  AND state = 'in_service'
	`

	// queryClaimOldestWaiting selects the oldest waiting ticket across all
	// categories. SKIP LOCKED lets two windows calling near-simultaneously
	// serialize onto different rows instead of blocking or double-claiming.
	queryClaimOldestWaiting = `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE state = 'waiting'
		ORDER BY created_at ASC, id ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`

	queryCallTicket = `
		UPDATE tickets
		SET state = 'in_service', window_name = $1, called_at = NOW()
		WHERE id = $2
		RETURNING called_at
	`

	// queryMarkServed only transitions from in_service; zero rows means the
	// ticket is missing or in another state.
	queryMarkServed = `
		UPDATE tickets
		SET state = 'served'
		WHERE id = $1
		  AND state = 'in_service'
		RETURNING ` + ticketColumns + `
	`

	queryTicketState = `SELECT state FROM tickets WHERE id = $1`

	queryActiveForWindow = `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE window_name = $1
		  AND state = 'in_service'
		LIMIT 1
	`

	queryTicketsByState = `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE state = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2
	`

	// queryCurrentTicket: most recently called ticket, even if already served.
	queryCurrentTicket = `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE called_at IS NOT NULL
		ORDER BY called_at DESC, id DESC
		LIMIT 1
	`

	queryRecentCalled = `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE called_at IS NOT NULL
		  AND state IN ('in_service', 'served')
		ORDER BY called_at DESC, id DESC
		OFFSET $1
		LIMIT $2
	`

	queryWaitingByCategory = `
		SELECT category, COUNT(*)
		FROM tickets
		WHERE state = 'waiting'
		GROUP BY category
		ORDER BY category
	`

	queryIssuedToday = `
		SELECT COUNT(*)
		FROM tickets
		WHERE day = CURRENT_DATE
	`

	// queryMirrorRecord inserts one ledger entry per (document, day).
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	queryMirrorRecord = `
		INSERT INTO intake_ledger (
			first_name, middle_name, first_surname, second_surname,
			document, category_label, read_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (document, day) DO NOTHING
		RETURNING id
	`

	// queryPendingEntries: oldest-arrival first by insertion order, which is
	// the fairness guarantee for ticket offers.
	queryPendingEntries = `
		SELECT
			id, first_name, middle_name, first_surname, second_surname,
			document, category_label, read_at, processed, assigned_ticket,
			processed_at, pass_id
		FROM intake_ledger
		WHERE day = CURRENT_DATE
		  AND processed = FALSE
		ORDER BY id ASC
		LIMIT $1
	`

	queryMarkProcessed = `
		UPDATE intake_ledger
		SET processed = TRUE, processed_at = NOW(), pass_id = $1
		WHERE id = $2
	`

	// queryReopenEntry puts a processed entry back in front of the admission
	// filter when the document has appeared in the feed more times than it
	// has been issued tickets today, the re-entry signal.
	queryReopenEntry = `
		UPDATE intake_ledger
		SET processed = FALSE, processed_at = NULL, pass_id = NULL, read_at = NOW()
		WHERE document = $1
		  AND day = CURRENT_DATE
		  AND processed = TRUE
		  AND $2 > (
			SELECT COUNT(*)
			FROM tickets
			WHERE document = $1
			  AND day = CURRENT_DATE
		  )
	`
)
