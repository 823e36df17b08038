package notifications

import (
	"fmt"
	"strings"
)

// Event names
const (
	EventRegistered           = "account.registered"
	EventAccountStatusChanged = "account.status_changed"
	EventKYCStatusChanged     = "account.kyc_changed"
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingAssigned      = "booking.assigned"
	EventComplaintUpdated     = "complaint.updated"
	EventOrderPlaced          = "order.placed"
	EventOrderStatusChanged   = "order.status_changed"
)

// Recipient is where a person can be reached. Email may be empty.
type Recipient struct {
	Name  string
	Email string
	Phone string
}

// To builds one message per reachable channel of r
func To(r Recipient, event, subject, body string) []Message {
	var msgs []Message
	if r.Email != "" {
		msgs = append(msgs, Message{Channel: ChannelEmail, To: r.Email, Subject: subject, Body: body, Event: event})
	}
	if r.Phone != "" {
		msgs = append(msgs, Message{Channel: ChannelWhatsApp, To: r.Phone, Body: body, Event: event})
	}
	return msgs
}

// Welcome is sent after a successful registration
func Welcome(r Recipient, role string) []Message {
	body := fmt.Sprintf("Hi %s, your %s account has been created.", r.Name, strings.ToLower(role))
	if role != "CUSTOMER" {
		body += " Our team will review your profile and KYC documents shortly."
	}
	return To(r, EventRegistered, "Welcome to ServiceHub", body)
}

// AccountStatusChanged is sent when an admin approves, rejects or suspends a profile
func AccountStatusChanged(r Recipient, status, reason string) []Message {
	body := fmt.Sprintf("Hi %s, your account status is now %s.", r.Name, status)
	if reason != "" {
		body += " Reason: " + reason
	}
	return To(r, EventAccountStatusChanged, "Your account status changed", body)
}

// KYCStatusChanged is sent after a KYC review
func KYCStatusChanged(r Recipient, status, reason string) []Message {
	body := fmt.Sprintf("Hi %s, your KYC verification is now %s.", r.Name, status)
	if reason != "" {
		body += " Reason: " + reason
	}
	return To(r, EventKYCStatusChanged, "KYC review update", body)
}

// BookingCreated tells a dealer about a new booking
func BookingCreated(r Recipient, bookingID, serviceType, scheduledAt string) []Message {
	body := fmt.Sprintf("New booking %s for %s scheduled at %s.", bookingID, serviceType, scheduledAt)
	return To(r, EventBookingCreated, "New booking received", body)
}

// BookingStatusChanged tells a customer about a status change
func BookingStatusChanged(r Recipient, bookingID, status, reason string) []Message {
	body := fmt.Sprintf("Hi %s, your booking %s is now %s.", r.Name, bookingID, status)
	if reason != "" {
		body += " Reason: " + reason
	}
	return To(r, EventBookingStatusChanged, "Booking update", body)
}

// BookingAssigned tells a technician about a new job
func BookingAssigned(r Recipient, bookingID, address, scheduledAt string) []Message {
	body := fmt.Sprintf("Hi %s, you have been assigned booking %s at %s on %s.", r.Name, bookingID, address, scheduledAt)
	return To(r, EventBookingAssigned, "New job assigned", body)
}

// ComplaintUpdated tells a customer about the progress of a complaint
func ComplaintUpdated(r Recipient, complaintID, status, resolution string) []Message {
	body := fmt.Sprintf("Hi %s, your complaint %s is now %s.", r.Name, complaintID, status)
	if resolution != "" {
		body += " Resolution: " + resolution
	}
	return To(r, EventComplaintUpdated, "Complaint update", body)
}

// OrderStatusChanged tells a customer about an order
func OrderStatusChanged(r Recipient, orderID, status, total string) []Message {
	event := EventOrderStatusChanged
	if status == "PENDING" {
		event = EventOrderPlaced
	}
	body := fmt.Sprintf("Hi %s, your order %s (total %s) is %s.", r.Name, orderID, total, status)
	return To(r, event, "Order update", body)
}
