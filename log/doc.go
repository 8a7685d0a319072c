// Package log provides a wrapped zap logger for the packages in this module
// and the binaries built on top of them,
// and also a simple Wrapper interface for the places that only need to emit
// an occasional message.
//
// The global logger is a nop logger until one of the Init* functions is
// called:
//
//	log.InitLogger(log.DebugLevel)
//	log.Debugw("Generator created", "profile", profile, "seed", seed)
//
// 64-bit integer fields are rendered as strings,
// so seeds are never rounded by JSON log ingestion.
package log
