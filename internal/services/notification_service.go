package services

import (
	"context"
	"fmt"
	"log"

	"tailor-backend/internal/repositories"
	"tailor-backend/internal/timeutil"
)

// TemplateSender delivers a WhatsApp template message. Satisfied by the
// whatsapp package's providers.
type TemplateSender interface {
	SendTemplateMessage(phone, templateName string, params []string) error
	GetName() string
}

type NotificationService struct {
	orderRepo *repositories.OrderRepository
	billRepo  *repositories.BillRepository
	sender    TemplateSender
	template  string
}

func NewNotificationService(
	orderRepo *repositories.OrderRepository,
	billRepo *repositories.BillRepository,
	sender TemplateSender,
	template string,
) *NotificationService {
	return &NotificationService{
		orderRepo: orderRepo,
		billRepo:  billRepo,
		sender:    sender,
		template:  template,
	}
}

// NotifyOrderReady sends the "order ready" template to the bill's mobile
// number for one order.
func (s *NotificationService) NotifyOrderReady(ctx context.Context, orderID int) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("fetch order %d: %w", orderID, err)
	}
	if order == nil {
		return ErrNotFound
	}

	bill, err := s.billRepo.GetByID(ctx, order.BillID)
	if err != nil {
		return fmt.Errorf("fetch bill %d: %w", order.BillID, err)
	}
	if bill == nil {
		return ErrNotFound
	}

	params := []string{bill.CustomerName, order.GarmentType, timeutil.FormatDate(order.DueDate)}
	if err := s.sender.SendTemplateMessage(bill.MobileNumber, s.template, params); err != nil {
		return fmt.Errorf("send via %s: %w", s.sender.GetName(), err)
	}

	log.Printf("[Notify] Order %d ready message sent to %s via %s", orderID, bill.MobileNumber, s.sender.GetName())
	return nil
}
