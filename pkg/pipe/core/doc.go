// Package core contains the plumbing used by package chain: options carried
// in a context (observer, source name) and the Observer that receives chain
// events. It does not run steps itself.
package core
