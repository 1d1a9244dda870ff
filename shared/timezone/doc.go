// Package timezone keeps the application timezone used when rendering
// timestamps, e.g. booking created_at values in API responses and confirmation emails.
//
//	timezone.Init(cfg.App.Timezone)
//	formatted := timezone.Format(booking.CreatedAt, time.RFC3339)
//
// Use IANA names such as "UTC", "Asia/Jakarta" or "Europe/London". Until Init is
// called, or when the name cannot be loaded, UTC is used.
package timezone
