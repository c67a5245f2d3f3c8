// Package varint implements ChainPack's variable-length unsigned and
// signed integer codecs (§4.1, §4.2): a 1-19 byte encoding whose leading
// byte's high-order prefix declares the total byte count, and a signed
// variant that embeds a sign bit one position below the highest payload
// bit the unsigned form would use for the same magnitude.
package varint
