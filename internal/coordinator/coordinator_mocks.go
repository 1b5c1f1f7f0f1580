package coordinator

//go:generate moq -pkg mocks -out ./mocks/coordinator_store_mock.go ./store/ CoordinatorStore
