//go:generate go run go.uber.org/mock/mockgen -destination=mock_gpu.go -package=gpumock github.com/sarchlab/ocular/gpu Host,Int32Buffer

package gpumock
