package utils

import (
	"fmt"
	"io"
	"strconv"

	"liftsim/src/types"
)

// PrintStatus writes a one-line summary of the car.
func PrintStatus(w io.Writer, st types.LiftState) {
	target := "-"
	if st.Target != nil {
		target = strconv.Itoa(*st.Target)
	}
	fmt.Fprintf(w, "Floor: %d | %v | Dir: %v | Target: %s | Calls: %v | Goes: %v\n",
		st.Floor, st.Behaviour, st.Dir, target, st.Calls, st.Goes)
}
