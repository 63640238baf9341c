package common

// UnknownStr is the String form of an out-of-range enum value.
const UnknownStr = "unknown"
