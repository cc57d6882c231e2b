// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the kiosk operator key.

# Operator Key

Setup, close and export routes require the X-Operator-Key header so a
participant at the voting screen cannot end an election. Voting itself is
open.

	key, err := auth.GenerateOperatorKey()
	err = auth.ValidateOperatorKey(r.Header.Get("X-Operator-Key"), cfg.OperatorKey)

When no key is configured one is generated at startup and logged once.

# Client Hashing

HashClient produces a short HMAC of the client address for log lines:

	client := auth.HashClient(middleware.GetClientIP(r), cfg.OperatorKey)

This is not ballot secrecy; it only keeps raw addresses out of the logs.
*/
package auth
