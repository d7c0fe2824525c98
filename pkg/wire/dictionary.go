// Package wire serializes compiled flows into the platform's JSON format.
//
// The compiler works with camelCase attribute names. At the wire boundary
// every multi-word element attribute is hyphenated through a fixed
// dictionary, and the same dictionary maps authored sources back.
package wire

var toExternal = map[string]string{
	"helperText":        "helper-text",
	"minChars":          "min-chars",
	"maxChars":          "max-chars",
	"initValue":         "init-value",
	"inputType":         "input-type",
	"fontWeight":        "font-weight",
	"maxLength":         "max-length",
	"dataSource":        "data-source",
	"minSelectedItems":  "min-selected-items",
	"maxSelectedItems":  "max-selected-items",
	"minDate":           "min-date",
	"maxDate":           "max-date",
	"unavailableDates":  "unavailable-dates",
	"photoSource":       "photo-source",
	"minUploadedPhotos": "min-uploaded-photos",
	"maxUploadedPhotos": "max-uploaded-photos",
	"maxFileSizeKb":     "max-file-size-kb",
	"scaleType":         "scale-type",
	"aspectRatio":       "aspect-ratio",
	"altText":           "alt-text",
	"nextScreen":        "next-screen",
	"payloadKeys":       "payload-keys",
	"leftCaption":       "left-caption",
	"centerCaption":     "center-caption",
	"rightCaption":      "right-caption",
}

var toInternal = func() map[string]string {
	m := make(map[string]string, len(toExternal))
	for k, v := range toExternal {
		m[v] = k
	}
	return m
}()

// External returns the wire name of an internal attribute name.
// Names outside the dictionary are returned unchanged.
func External(key string) string {
	if v, ok := toExternal[key]; ok {
		return v
	}
	return key
}

// Internal is the inverse of External.
func Internal(key string) string {
	if v, ok := toInternal[key]; ok {
		return v
	}
	return key
}

// Dictionary returns a copy of the internal to wire name mapping.
func Dictionary() map[string]string {
	out := make(map[string]string, len(toExternal))
	for k, v := range toExternal {
		out[k] = v
	}
	return out
}
