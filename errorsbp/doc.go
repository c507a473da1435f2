// Package errorsbp collects several errors into one.
//
// It's used where more than one step of a cleanup can fail, for example:
//
//	var batch errorsbp.Batch
//	batch.AddPrefix("write", writeErr)
//	batch.AddPrefix("close", f.Close())
//	return batch.Compile()
package errorsbp
