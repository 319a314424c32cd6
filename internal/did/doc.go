// Package did parses verifiable presentations returned by the managed wallet
// and checks them against the holder's DID as published by a resolver.
//
// Signature cryptography is not evaluated here; the verifier checks the
// structural bindings between holder, proof, credentials and the resolved
// DID document.
package did
