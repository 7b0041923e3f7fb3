package utils

// Contains is a generic function that checks whether the specified item is present in the given array.
//
// Args:
//   - arr: The array to search in.
//   - item: The item to search for.
//
// Returns:
//   - bool: True if the item is found in the array, otherwise false.
func Contains[T comparable](arr []T, item T) bool {
	for _, i := range arr {
		if i == item {
			return true
		}
	}

	return false
}

// Remove is a generic function that removes the first occurrence of the specified item from the given array.
//
// Args:
//   - arr: The array to remove the item from.
//   - item: The item to remove.
//
// Returns:
//   - []T: The modified array without the removed item.
func Remove[T comparable](arr []T, item T) []T {
	for i, v := range arr {
		if v == item {
			return append(arr[:i], arr[i+1:]...)
		}
	}

	return arr
}
