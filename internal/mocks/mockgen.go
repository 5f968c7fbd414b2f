//go:build gomock || generate

package mocks

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -package mocklogging -destination logging/tracer.go github.com/mpflow/wbbr/internal/congestion Tracer"
