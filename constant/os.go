package constant

// Windows is runtime.GOOS on the only platform with a native registry backend.
const Windows = "windows"
