// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds the small amount of identity handling the service does.

There are no passwords or sessions: a voter logs in by presenting the ID
number printed on the voter roll.

# ID Numbers

ID numbers are exactly eight ASCII digits:

	idNumber, err := auth.NormalizeIDNumber(req.IDNumber)
	if errors.Is(err, auth.ErrInvalidIDNumber) {
		// reject before touching the database
	}

# Log Hygiene

ID numbers and client IPs never reach the logs in clear:

	slog.Info("login", "id_number", auth.MaskIDNumber(idNumber))  // "4158****"
	slog.Info("login", "client", auth.HashIP(ip, cfg.IPHashSalt))

HashIP returns the first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
