package jobs

import (
	"context"

	"pvmarket-backend/internal/logger"
	"pvmarket-backend/internal/service"
)

// Cap per run; leftovers wait for the next hourly tick.
const inquiryBatchSize = 100

// PurgeExpiredSessions deletes user_sessions rows past their expiry
func (jr *JobRunner) PurgeExpiredSessions() {
	jr.runWithRecovery("PurgeExpiredSessions", func() {
		ctx := context.Background()

		purged, err := jr.store.SessionRepository.DeleteExpired(ctx)
		if err != nil {
			logger.Error("Failed to purge expired sessions", "error", err)
			return
		}
		logger.Info("Purged expired sessions", "count", purged)
	})
}

// DeliverPendingInquiries emails stored pole_inquiries rows that were written
// while no email API key was configured (or while SendGrid was down)
func (jr *JobRunner) DeliverPendingInquiries() {
	jr.runWithRecovery("DeliverPendingInquiries", func() {
		ctx := context.Background()

		if !jr.services.Email.Enabled() {
			logger.Info("Email delivery not configured, leaving pending inquiries in place")
			return
		}

		inquiries, err := jr.store.InquiryRepository.ListUnnotified(ctx, inquiryBatchSize)
		if err != nil {
			logger.Error("Failed to list pending inquiries", "error", err)
			return
		}
		if len(inquiries) == 0 {
			logger.Info("No pending inquiries to deliver")
			return
		}

		delivered := 0
		for _, inq := range inquiries {
			email := service.InquiryEmail{
				OwnerEmail:    inq.OwnerEmail,
				InquirerEmail: inq.InquirerEmail,
			}
			if inq.InquirerName != nil {
				email.InquirerName = *inq.InquirerName
			}
			if inq.Message != nil {
				email.Message = *inq.Message
			}

			// The pole may have been deleted since the inquiry was stored;
			// send what we have in that case.
			if pole, err := jr.store.PoleRepository.GetByID(ctx, inq.PoleID); err == nil {
				email.Brand = pole.Brand
				email.LengthCM = pole.LengthCM
				email.WeightLbs = pole.WeightLbs
				email.Location = pole.Municipality
			}

			if err := jr.services.Email.SendPoleInquiry(ctx, email); err != nil {
				logger.Error("Failed to deliver inquiry", "inquiry_id", inq.ID, "error", err)
				continue
			}
			if err := jr.store.InquiryRepository.MarkNotified(ctx, inq.ID); err != nil {
				logger.Error("Failed to mark inquiry as notified", "inquiry_id", inq.ID, "error", err)
				continue
			}
			delivered++
		}

		logger.Info("Delivered pending inquiries", "delivered", delivered, "pending", len(inquiries)-delivered)
	})
}
