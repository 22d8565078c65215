package detector

// Detect exposes the TTY-independent part of DetectEnvironment.
var Detect = detect
