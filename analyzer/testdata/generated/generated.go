// Code generated by hand for testing. DO NOT EDIT.

package generated

func generated(xs []int) {
	for range xs {
		for range xs {
			for range xs { // want "Loop nesting depth 3"
			}
		}
	}
}
