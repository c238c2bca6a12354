package glob

import "strings"

// isBinaryName reports whether a file name carries an extension of a known
// binary format. Versioned shared libraries such as libfoo.so.1.2 count too.
func isBinaryName(name string) bool {
	if strings.Contains(name, ".so.") {
		return true
	}
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return false
	}
	_, ok := binaryExts[strings.ToLower(name[dot:])]
	return ok
}

var binaryExts = map[string]struct{}{
	// objects and executables
	".a": {}, ".o": {}, ".so": {}, ".dylib": {}, ".dll": {}, ".exe": {},
	".bin": {}, ".class": {}, ".pyc": {}, ".wasm": {},
	// archives
	".gz": {}, ".bz2": {}, ".xz": {}, ".zst": {}, ".z": {}, ".zip": {},
	".tar": {}, ".7z": {}, ".rar": {}, ".jar": {}, ".deb": {}, ".rpm": {},
	// media
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {},
	".webp": {}, ".mp3": {}, ".mp4": {}, ".wav": {}, ".mkv": {}, ".mov": {},
	// fonts and documents
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".pdf": {},
	".docx": {}, ".xlsx": {}, ".pptx": {},
	// databases
	".db": {}, ".sqlite": {},
}
