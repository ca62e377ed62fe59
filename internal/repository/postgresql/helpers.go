package postgresql

import "strconv"

// itoa shortens positional-placeholder building in dynamic UPDATEs.
func itoa(i int) string {
	return strconv.Itoa(i)
}
