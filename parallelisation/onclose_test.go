package parallelisation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-batchqueue/parallelisation/mocks"
)

//go:generate go tool mockgen -destination=./mocks/mock_$GOPACKAGE.go -package=mocks io Closer
func TestCloseAll(t *testing.T) {
	for _, closeErr := range []error{nil, commonerrors.ErrUnexpected} {
		t.Run(fmtErr(closeErr), func(t *testing.T) {
			ctlr := gomock.NewController(t)
			closer := mocks.NewMockCloser(ctlr)
			// every closer is called even when one fails
			closer.EXPECT().Close().Return(closeErr).Times(2)

			err := CloseAll(closer, closer)
			if closeErr == nil {
				require.NoError(t, err)
			} else {
				errortest.AssertError(t, err, closeErr)
			}
		})
	}
	errortest.AssertError(t, CloseAll(nil), commonerrors.ErrUndefined)
}

func fmtErr(err error) string {
	if err == nil {
		return "no error"
	}
	return err.Error()
}

func TestCloseFunctionStoreCancelsContexts(t *testing.T) {
	for _, options := range [][]StoreOption{
		{StopOnFirstError, Parallel},
		{StopOnFirstError, Sequential},
		{ExecuteAll, SequentialInReverse},
	} {
		store := NewCloseFunctionStore(options...)
		var contexts []context.Context
		for range 3 {
			ctx, cancel := context.WithCancel(context.Background())
			contexts = append(contexts, ctx)
			store.RegisterCancelFunction(cancel)
		}
		require.Equal(t, 3, store.Len())
		require.NoError(t, store.Close())
		for i := range contexts {
			errortest.AssertError(t, DetermineContextError(contexts[i]), commonerrors.ErrCancelled)
		}
		assert.Equal(t, 3, store.Len())
	}
}

func TestCloseFunctionStoreOrder(t *testing.T) {
	tests := []struct {
		name          string
		options       []StoreOption
		failing       func(int) bool
		expectedOrder []int
	}{
		{
			name:          "registration order",
			options:       []StoreOption{Sequential},
			expectedOrder: []int{0, 1, 2, 3},
		},
		{
			name:          "reverse order",
			options:       []StoreOption{SequentialInReverse},
			expectedOrder: []int{3, 2, 1, 0},
		},
		{
			name:          "stops at the first failure",
			options:       []StoreOption{SequentialInReverse, StopOnFirstError},
			failing:       func(i int) bool { return i == 2 },
			expectedOrder: []int{3, 2},
		},
		{
			name:          "goes on after failures",
			options:       []StoreOption{Sequential, ExecuteAll},
			failing:       func(i int) bool { return i%2 == 1 },
			expectedOrder: []int{0, 1, 2, 3},
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			var order []int
			store := NewCloseFunctionStore(test.options...)
			for j := range 4 {
				store.RegisterCloseFunction(func() error {
					order = append(order, j)
					if test.failing != nil && test.failing(j) {
						return commonerrors.ErrUnexpected
					}
					return nil
				})
			}
			err := store.Close()
			if test.failing == nil {
				require.NoError(t, err)
			} else {
				errortest.AssertError(t, err, commonerrors.ErrUnexpected)
			}
			assert.Equal(t, test.expectedOrder, order)
		})
	}
}
