package errv

// Terminated exposes an owned value's buffer including its trailing zero
// byte, for tests in package errv_test. It returns nil for non-owned values.
func Terminated(v Value) []byte {
	if v.kind != KindOwned {
		return nil
	}
	return v.buf.Terminated()
}
