// Package email builds the HTML bodies for outbound mail.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

const otpTmplSrc = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: auto; padding: 32px; border: 1px solid #eee; border-radius: 12px;">
  <h2 style="color: #1a1a1a;">Your One-Time Password</h2>
  <p style="color: #555;">Use the code below to complete your sign-in. It expires in <strong>{{.TTLMinutes}} minutes</strong>.</p>
  <div style="font-size: 36px; font-weight: bold; letter-spacing: 8px; color: #000; text-align: center; padding: 24px; background: #f5f5f5; border-radius: 8px; margin: 24px 0;">{{.Code}}</div>
  <p style="color: #999; font-size: 13px;">If you didn't request this, you can safely ignore this email.</p>
</div>`

const dropTmplSrc = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>New Drop &#8212; DwV</title>
</head>
<body style="margin:0;padding:0;background:#f4f7f9;font-family:'Georgia',serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background:#f4f7f9;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:24px;overflow:hidden;">
          <tr>
            <td style="background:#000000;padding:28px 40px;text-align:center;">
              <span style="font-family:'Georgia',serif;font-size:32px;font-weight:bold;font-style:italic;color:#dc2626;">DwV</span>
              <span style="display:block;color:#888;font-size:11px;letter-spacing:3px;text-transform:uppercase;margin-top:4px;">Discover With Vaibhav</span>
            </td>
          </tr>
          {{if .ImageURL}}<tr>
            <td style="padding:0;">
              <img src="{{.ImageURL}}" alt="{{.ProductName}}" width="600" style="width:100%;max-width:600px;height:auto;display:block;border:0;" />
            </td>
          </tr>{{end}}
          <tr>
            <td style="padding:48px 48px 32px;text-align:center;">
              <p style="margin:0 0 8px;font-size:12px;letter-spacing:4px;text-transform:uppercase;color:#dc2626;font-family:Arial,sans-serif;">New Drop</p>
              <h1 style="margin:0 0 16px;font-size:30px;font-weight:bold;color:#111;line-height:1.3;">{{.ProductName}}</h1>
              <p style="margin:0 0 32px;font-size:16px;color:#666;line-height:1.8;font-style:italic;">"The wait is over. Something rare has arrived on our discovery board &#8212;<br/>curated with intent, styled for the bold."</p>
              <a href="{{.SiteURL}}" target="_blank" style="display:inline-block;background:#000;color:#fff;text-decoration:none;font-family:Arial,sans-serif;font-size:14px;font-weight:bold;letter-spacing:2px;text-transform:uppercase;padding:18px 48px;border-radius:999px;">Discover Now &#8594;</a>
            </td>
          </tr>
          <tr>
            <td style="padding:28px 48px 40px;text-align:center;">
              <p style="margin:0;font-size:12px;color:#aaa;font-family:Arial,sans-serif;line-height:1.8;">You're receiving this because you joined the <strong style="color:#dc2626;">DwV</strong> early-access list.<br/>&#169; {{.Year}} DiscoverWithVaibhav. Crafted with &#9829;</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

var (
	otpTmpl  = template.Must(template.New("otp").Parse(otpTmplSrc))
	dropTmpl = template.Must(template.New("drop").Parse(dropTmplSrc))
)

// OTPBody renders the one-time-password email.
func OTPBody(code string, ttl time.Duration) string {
	var buf bytes.Buffer
	_ = otpTmpl.Execute(&buf, map[string]interface{}{
		"Code":       code,
		"TTLMinutes": int(ttl.Minutes()),
	})
	return buf.String()
}

// DropSubject builds the subject line for a new-drop notification.
func DropSubject(productName string) string {
	return fmt.Sprintf("✨ New Drop on DwV — %s", productName)
}

// DropBody renders the new-drop notification email. Data-URI images don't
// render in mail clients, so only http(s) image URLs make it into the body.
func DropBody(productName, productImage, siteURL string) string {
	imageURL := ""
	if strings.HasPrefix(productImage, "http") {
		imageURL = productImage
	}
	var buf bytes.Buffer
	_ = dropTmpl.Execute(&buf, map[string]interface{}{
		"ProductName": productName,
		"ImageURL":    imageURL,
		"SiteURL":     siteURL,
		"Year":        time.Now().Year(),
	})
	return buf.String()
}
