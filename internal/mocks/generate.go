package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Reader --dir ../domain/rawdata --output domain/rawdata --outpkg rawdatamock --filename reader_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Writer --dir ../domain/rawdata --output domain/rawdata --outpkg rawdatamock --filename writer_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Loader --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename loader_mock.go
