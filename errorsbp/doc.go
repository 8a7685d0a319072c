// Package errorsbp provides Batch, which can be used to compile multiple
// errors into a single one.
//
// It's mainly used by configuration validation,
// so a config file with several problems reports all of them at once:
//
//	func (c Config) Validate() error {
//		var batch errorsbp.Batch
//		batch.AddPrefix("generator", c.Generator.Validate())
//		if c.Count < 0 {
//			batch.Add(fmt.Errorf("count must not be negative, got %d", c.Count))
//		}
//		return batch.Compile()
//	}
//
// This package is not thread-safe.
// The same batch should not be operated on different goroutines concurrently.
package errorsbp
