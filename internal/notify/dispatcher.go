package notify

import (
	"fmt"
	"log"

	"github.com/lumeabeauty/studio-scheduler/internal/models"
)

type Kind string

const (
	KindBookingCreated   Kind = "booking_created"
	KindBookingConfirmed Kind = "booking_confirmed"
	KindBookingRejected  Kind = "booking_rejected"
)

type Event struct {
	Kind    Kind
	Booking models.Booking
}

// Dispatcher delivers booking emails off the request path. Failure to
// send, or a full queue, must never fail the booking operation itself.
type Dispatcher struct {
	mailer        Mailer
	operatorEmail string
	queue         chan Event
}

func NewDispatcher(mailer Mailer, operatorEmail string) *Dispatcher {
	d := &Dispatcher{
		mailer:        mailer,
		operatorEmail: operatorEmail,
		queue:         make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		to, subject, body := d.compose(ev)
		if to == "" {
			continue
		}
		if err := d.mailer.Send(to, subject, body); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}

func (d *Dispatcher) compose(ev Event) (to, subject, body string) {
	b := ev.Booking
	when := fmt.Sprintf("%s at %s", b.Date.Format("2006-01-02"), b.Time)

	switch ev.Kind {
	case KindBookingCreated:
		to = d.operatorEmail
		subject = "New booking request"
		body = fmt.Sprintf(
			"New booking request %s.\n\nClient: %s (%s, %s)\nService: %s\nWhen: %s\nStaff: %s\nNotes: %s\n",
			b.Code, b.ClientName, b.ClientEmail, b.ClientPhone,
			b.Service, when, staffLine(b), b.Notes,
		)

	case KindBookingConfirmed:
		to = b.ClientEmail
		subject = "Your booking is confirmed"
		body = fmt.Sprintf(
			"Hi %s,\n\nYour booking for %s on %s is confirmed.\nStaff: %s\n\nSee you soon!\n",
			b.ClientName, b.Service, when, staffLine(b),
		)

	case KindBookingRejected:
		to = b.ClientEmail
		subject = "Your booking could not be confirmed"
		body = fmt.Sprintf(
			"Hi %s,\n\nUnfortunately we could not confirm your booking for %s on %s.\n",
			b.ClientName, b.Service, when,
		)
		if b.RejectionReason != "" {
			body += fmt.Sprintf("Reason: %s\n", b.RejectionReason)
		}
		body += "\nPlease pick another time on our booking page.\n"
	}

	return to, subject, body
}

func staffLine(b models.Booking) string {
	if b.StaffName == "" {
		return "any available specialist"
	}
	return b.StaffName
}
