package funcutil

// JoinCancels joins multiple cancel callbacks into one. They are called in
// reverse order.
func JoinCancels(cancels ...func()) func() {
	return func() {
		for i := len(cancels) - 1; i >= 0; i-- {
			cancels[i]()
		}
	}
}
