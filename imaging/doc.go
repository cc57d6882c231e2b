// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package imaging loads candidate photos and symbols from disk.

Loader decodes JPEG or PNG files and resizes them to fixed squares
(180×180 for photos, 60×60 for symbols by default):

	loader := imaging.NewLoader(0, 0)
	err := e.ValidateAndStart(loader)

Unreadable or corrupt files produce an *UnreadableImageError.
EncodePNG renders normalised images for the HTTP layer.
*/
package imaging
