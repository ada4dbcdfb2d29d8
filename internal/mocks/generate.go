package mocks

//go:generate mockery --name Ledger --srcpkg github.com/aevon-lab/pos-analytics/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name WeatherProvider --srcpkg github.com/aevon-lab/pos-analytics/internal/signals --output ./signals --outpkg signalsmocks --with-expecter
//go:generate mockery --name FlowProvider --srcpkg github.com/aevon-lab/pos-analytics/internal/signals --output ./signals --outpkg signalsmocks --with-expecter
