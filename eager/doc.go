// Package eager materializes the adapters of package seqs.
//
// Every function here builds the corresponding lazy adapter and drains it at once,
// returning a plain slice. Use it when the result is small and needed in full;
// use seqs directly for infinite sources or when only a prefix will be consumed.
package eager
