package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - состояние сервиса и его хранилища
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the service"`
	Storage string `json:"storage" example:"OK" doc:"Storage reachability"`
}
