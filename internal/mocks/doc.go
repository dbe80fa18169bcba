// Package mocks provides shared test doubles for the store, auth and service
// interfaces.
//
// Most mocks use function fields: set the field for the method under test
// and leave the rest at their defaults.
//
//	tokens := &mocks.MockJWTService{
//	    GenerateTokenFn: func(ctx context.Context, subject string) (string, error) {
//	        return "mocked-token", nil
//	    },
//	}
//
// TestifyMockTaskStore is built on testify/mock for tests that assert on
// call arguments.
package mocks
