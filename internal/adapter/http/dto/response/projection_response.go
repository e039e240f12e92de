package response

import (
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
)

type InstallmentsResponse struct {
	Total        money.Amount           `json:"total"`
	Installments []entities.Installment `json:"installments"`
}

type MarkReadResponse struct {
	ChatID  string `json:"chatId"`
	Updated int    `json:"updated"`
}
