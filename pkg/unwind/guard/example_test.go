package guard_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/unwind/pkg/unwind"
	"github.com/ib-77/unwind/pkg/unwind/guard"
)

func ExampleWith() {
	ctx := context.Background()
	st := unwind.NewStack()

	err := guard.With(ctx, st, func(ctx context.Context) error {
		// db step succeeded, register its compensations
		st.OnFailure(func() { fmt.Println("rollback db") })
		st.OnSuccess(func() { fmt.Println("commit db") })

		// webservice step succeeded
		st.OnFailure(func() { fmt.Println("undo webservice call") })

		// log file step fails
		return errors.New("disk full")
	})
	fmt.Println("error:", err)

	// Output:
	// undo webservice call
	// rollback db
	// error: disk full
}
