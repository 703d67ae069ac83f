package verify_payment

// Request модель запроса с возвратом со шлюза
type Request struct {
	Reference string // ID бронирования
}

// Response куда перенаправить клиента
type Response struct {
	RedirectURL string
	Found       bool
}
