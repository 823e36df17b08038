// Package pdf renders job sheets, invoices and audit reports with fpdf.
package pdf
