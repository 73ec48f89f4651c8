//go:generate go run go.uber.org/mock/mockgen -destination=mock_arch.go -package=archmock github.com/sarchlab/ocular/arch Database

package archmock
