package ptr

// String returns a pointer to the input value
func String(value string) *string {
	return &value
}

// Int returns a pointer to the input value
func Int(value int) *int {
	return &value
}

// Int32 returns a pointer to the input value
func Int32(value int32) *int32 {
	return &value
}

// Int64 returns a pointer to the input value
func Int64(value int64) *int64 {
	return &value
}

// Uint64 returns a pointer to the input value
func Uint64(value uint64) *uint64 {
	return &value
}

// Bool returns a pointer to the input value
func Bool(value bool) *bool {
	return &value
}
