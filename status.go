package gdip

import "strconv"

// Status is a native status code. The values follow the GDI+ Status
// enumeration; other backends report through the same codes.
type Status int

// GDI+ status codes.
const (
	Ok Status = iota
	GenericError
	InvalidParameter
	OutOfMemory
	ObjectBusy
	InsufficientBuffer
	NotImplemented
	Win32Error
	WrongState
	Aborted
	FileNotFound
	ValueOverflow
	AccessDenied
	UnknownImageFormat
	FontFamilyNotFound
	FontStyleNotFound
	NotTrueTypeFont
	UnsupportedGdiplusVersion
	GdiplusNotInitialized
	PropertyNotFound
	PropertyNotSupported
	ProfileNotFound
)

var statusNames = [...]string{
	Ok:                        "Ok",
	GenericError:              "GenericError",
	InvalidParameter:          "InvalidParameter",
	OutOfMemory:               "OutOfMemory",
	ObjectBusy:                "ObjectBusy",
	InsufficientBuffer:        "InsufficientBuffer",
	NotImplemented:            "NotImplemented",
	Win32Error:                "Win32Error",
	WrongState:                "WrongState",
	Aborted:                   "Aborted",
	FileNotFound:              "FileNotFound",
	ValueOverflow:             "ValueOverflow",
	AccessDenied:              "AccessDenied",
	UnknownImageFormat:        "UnknownImageFormat",
	FontFamilyNotFound:        "FontFamilyNotFound",
	FontStyleNotFound:         "FontStyleNotFound",
	NotTrueTypeFont:           "NotTrueTypeFont",
	UnsupportedGdiplusVersion: "UnsupportedGdiplusVersion",
	GdiplusNotInitialized:     "GdiplusNotInitialized",
	PropertyNotFound:          "PropertyNotFound",
	PropertyNotSupported:      "PropertyNotSupported",
	ProfileNotFound:           "ProfileNotFound",
}

// String returns the GDI+ name of the status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// OK reports whether s is the success status.
func (s Status) OK() bool { return s == Ok }
