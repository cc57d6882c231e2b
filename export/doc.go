// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export writes election snapshots to JSON files.

	snap, err := e.Export(time.Now())
	path := export.ResolvePath(cfg.ExportDir, "", e.Name())
	n, err := export.WriteFile(path, snap)

The document layout is:

	{
	    "election_name": "Class President",
	    "date": "2025-03-14 09:26:53",
	    "candidates": [
	        {"name": "Alice", "photo_path": "...", "symbol_path": "..."}
	    ],
	    "votes": {"Alice": 3, "Bob": 1}
	}

Write failures return *ExportWriteError. Retrying is up to the caller.
*/
package export
