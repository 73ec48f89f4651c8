//go:generate go run go.uber.org/mock/mockgen -destination=mock_netdb.go -package=netdbmock github.com/sarchlab/ocular/netdb Database

package netdbmock
