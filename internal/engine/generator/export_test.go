package generator

var FingerprintWith = fingerprint
