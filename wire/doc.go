// Package wire defines the ChainPack on-the-wire tag bytes: the
// payload-bearing type tags, the array flag bit, the singleton/framing
// sentinels, and the tiny-form byte ranges (§6).
package wire
