// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging builds the process slog logger.

	slog.SetDefault(logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel))

With format "auto" the text handler is used when stderr is a terminal and
the JSON handler otherwise, so kiosk logs stay readable on screen and
structured when redirected.
*/
package logging
