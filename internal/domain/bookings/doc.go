// Package bookings models service bookings ("jobs"), their status machine, the event
// trail of every status change and the complaints customers raise against a booking.
package bookings
