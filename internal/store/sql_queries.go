package store

const (
	insertMasterAuth = `
		INSERT INTO master_auth (id, hashed_password)
		VALUES (1, $1);`

	selectMasterAuth = `
		SELECT hashed_password
		FROM master_auth
		LIMIT 1;`

	countMasterAuth = `
		SELECT COUNT(*) FROM master_auth;`

	deleteMasterAuth = `
		DELETE FROM master_auth;`

	insertMasterEmail = `
		INSERT OR IGNORE INTO master_email (email)
		VALUES ($1);`

	selectMasterEmail = `
		SELECT email
		FROM master_email
		LIMIT 1;`

	countMasterEmail = `
		SELECT COUNT(*) FROM master_email;`

	insertCredential = `
		INSERT INTO stored_passwords (
			website,
			username,
			encrypted_password,
			category,
			created_at,
			expiry_date
		) VALUES ($1, $2, $3, $4, $5, $6);`

	selectCredential = `
		SELECT
			id,
			website,
			username,
			encrypted_password,
			category,
			created_at,
			expiry_date
		FROM stored_passwords
		WHERE id = $1;`

	selectAllCredentials = `
		SELECT
			id,
			website,
			username,
			encrypted_password,
			category,
			created_at,
			expiry_date
		FROM stored_passwords;`

	exportAllCredentials = `
		SELECT
			id,
			website,
			username,
			encrypted_password,
			category,
			created_at,
			expiry_date
		FROM stored_passwords
		ORDER BY website ASC;`

	insertDismissedAlert = `
		INSERT INTO dismissed_alerts (password_id, dismissed_at)
		VALUES ($1, $2);`

	deleteAllDismissedAlerts = `
		DELETE FROM dismissed_alerts;`

	insertHistoryEntry = `
		INSERT INTO password_history (encrypted_password, created_at)
		VALUES ($1, $2);`

	insertCategory = `
		INSERT OR IGNORE INTO password_categories (category_name)
		VALUES ($1);`

	selectCategories = `
		SELECT category_name
		FROM password_categories;`

	upsertVerificationCode = `
		INSERT OR REPLACE INTO verification_codes (email, code, created_at)
		VALUES ($1, $2, $3);`

	selectVerificationCode = `
		SELECT email, code, created_at
		FROM verification_codes
		WHERE email = $1;`

	deleteVerificationCode = `
		DELETE FROM verification_codes
		WHERE email = $1;`

	upsertPreference = `
		INSERT OR REPLACE INTO user_preferences (key, value)
		VALUES ($1, $2);`

	selectPreference = `
		SELECT value
		FROM user_preferences
		WHERE key = $1;`
)
