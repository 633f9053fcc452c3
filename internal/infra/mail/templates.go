package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

type welcomeTemplate struct {
	subject string
	html    string
	text    string
}

// One welcome email per vertical. Bodies are the production copy; the only
// personalization token is the first name.
var welcomeTemplates = map[string]welcomeTemplate{
	"ecom": {
		subject: "Your eCom Growth Leak Checklist is Ready!",
		html: `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;background-color:#f8fafc;color:#334155;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;overflow:hidden;">
    <div style="background:linear-gradient(135deg,#3380AB 0%,#6CAA33 100%);color:#ffffff;padding:40px 30px;text-align:center;">
      <h1 style="font-size:28px;font-weight:700;margin:0 0 8px 0;">Your Checklist is Ready!</h1>
      <p style="font-size:16px;margin:0;opacity:0.9;">The exact 23-point audit that's helped 56+ stores find revenue leaks</p>
    </div>
    <div style="padding:40px 30px;">
      <p style="font-size:18px;font-weight:600;color:#1e293b;">Hey {{.FirstName}},</p>
      <p style="font-size:16px;line-height:1.7;">Thanks for grabbing the <strong>eCom Growth Leak Checklist</strong> — here's your instant access:</p>
      <div style="text-align:center;">
        <a href="https://obsidianco.notion.site/ecom-growth-leak-checklist" style="display:inline-block;background:linear-gradient(135deg,#3380AB 0%,#6CAA33 100%);color:#ffffff;text-decoration:none;padding:16px 32px;border-radius:8px;font-weight:600;">Access Your Checklist Now</a>
      </div>
      <p style="font-size:16px;line-height:1.7;">This is the exact 23-point audit we use with our clients to fix revenue leaks in their paid ads, landing pages, and retention flows.</p>
      <p style="font-size:16px;line-height:1.7;">Let me know if you hit any snags — happy to help.</p>
      <p style="font-weight:600;color:#1e293b;">Talk soon,<br>—Mike<br><span style="color:#64748b;font-weight:400;">COO, The Obsidian Co.</span></p>
    </div>
  </div>
</body>
</html>`,
		text: `Hey {{.FirstName}},

Thanks for grabbing the eCom Growth Leak Checklist — here is the link: https://obsidianco.notion.site/ecom-growth-leak-checklist

This is the exact 23-point audit we use with our clients to fix revenue leaks in their paid ads, landing pages, and retention flows.

Let me know if you hit any snags — happy to help.

Talk soon,
—Mike
COO, The Obsidian Co.`,
	},
	"fashion": {
		subject: "Here's your download — 3 Fashion Ad Frameworks That Increased ROAS by 74%",
		html: `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;background-color:#f5f5f5;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="background:linear-gradient(135deg,#1a1a1a 0%,#2d2d2d 100%);padding:40px 30px;text-align:center;">
      <h1 style="color:#ffffff;font-size:28px;font-weight:700;margin:0 0 10px 0;">Your Fashion Ad Frameworks</h1>
      <p style="color:rgba(255,255,255,0.9);font-size:16px;margin:0;">3 Systems That Increased ROAS by 74% in 90 Days</p>
    </div>
    <div style="padding:40px 30px;">
      <p style="color:#333333;font-size:16px;line-height:1.6;">Hey {{.FirstName}},</p>
      <p style="color:#333333;font-size:16px;line-height:1.6;">Here's the download you requested — <strong>3 Fashion &amp; Footwear Ad Frameworks That Increased ROAS by 74% in 90 Days</strong>.</p>
      <div style="background:linear-gradient(135deg,#28a745 0%,#20883a 100%);border-radius:12px;padding:30px;text-align:center;margin:30px 0;">
        <a href="https://theobsidianco.com/fashion-frameworks" style="display:inline-block;background:#ffffff;color:#28a745;padding:16px 32px;text-decoration:none;border-radius:8px;font-weight:700;">Get Instant Access →</a>
      </div>
      <p style="color:#333333;font-size:16px;line-height:1.6;">No sales pitch. No follow-up ask. Just the same structures we use internally to scale eCommerce brands profitably.</p>
      <p style="color:#1a1a1a;font-size:16px;font-weight:600;">— Mike, COO<br><span style="color:#666666;font-style:italic;font-weight:400;">The Obsidian Co.</span></p>
    </div>
  </div>
</body>
</html>`,
		text: `Hey {{.FirstName}},

Here's the download you requested — 3 Fashion & Footwear Ad Frameworks That Increased ROAS by 74% in 90 Days: https://theobsidianco.com/fashion-frameworks

No sales pitch. No follow-up ask. Just the same structures we use internally to scale eCommerce brands profitably.

— Mike, COO
The Obsidian Co.`,
	},
	"saas": {
		subject: "Your free SaaS funnel map + ad scripts (PDF inside)",
		html: `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Helvetica,Arial,sans-serif;background-color:#F2F2F2;color:#020202;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="padding:40px 30px;">
      <p style="font-size:16px;line-height:1.6;">Hey {{.FirstName}},</p>
      <p style="font-size:16px;line-height:1.6;">Your SaaS funnel map and ad scripts are ready — the same structure we use to take cold traffic to booked demos.</p>
      <div style="text-align:center;margin:30px 0;">
        <a href="https://theobsidianco.com/saas-funnel-map" style="display:inline-block;background:#020202;color:#ffffff;padding:16px 32px;text-decoration:none;border-radius:8px;font-weight:700;">Download the Funnel Map</a>
      </div>
      <p style="font-size:16px;line-height:1.6;">Read it, steal the scripts, and reply if anything's unclear.</p>
      <p style="font-weight:600;">— Mike, COO<br><span style="color:#666666;font-weight:400;">The Obsidian Co.</span></p>
    </div>
  </div>
</body>
</html>`,
		text: `Hey {{.FirstName}},

Your SaaS funnel map and ad scripts are ready — the same structure we use to take cold traffic to booked demos: https://theobsidianco.com/saas-funnel-map

Read it, steal the scripts, and reply if anything's unclear.

— Mike, COO
The Obsidian Co.`,
	},
	"beauty": {
		subject: "Your 7 beauty ad frameworks are ready ($47M generated)",
		html: `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;background-color:#f5f5f5;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="background:linear-gradient(135deg,#1a1a1a 0%,#2d2d2d 100%);padding:40px 30px;text-align:center;">
      <h1 style="color:#ffffff;font-size:28px;font-weight:700;margin:0;">Your Beauty Ad Frameworks</h1>
    </div>
    <div style="padding:40px 30px;">
      <p style="color:#333333;font-size:16px;line-height:1.6;">Hey {{.FirstName}},</p>
      <p style="color:#333333;font-size:16px;line-height:1.6;">Here are the 7 frameworks behind $47M in tracked beauty revenue — every hook, angle, and structure laid out.</p>
      <div style="text-align:center;margin:30px 0;">
        <a href="https://theobsidianco.com/beauty-frameworks" style="display:inline-block;background:#1a1a1a;color:#ffffff;padding:16px 32px;text-decoration:none;border-radius:8px;font-weight:700;">Get the Frameworks</a>
      </div>
      <p style="color:#333333;font-size:16px;line-height:1.6;">Apply one this week and watch what structure does that "new creative" never will.</p>
      <p style="color:#1a1a1a;font-weight:600;">— Mike Nikolaou<br><span style="color:#666666;font-weight:400;">The Obsidian Co.</span></p>
    </div>
  </div>
</body>
</html>`,
		text: `Hey {{.FirstName}},

Here are the 7 frameworks behind $47M in tracked beauty revenue — every hook, angle, and structure laid out: https://theobsidianco.com/beauty-frameworks

Apply one this week and watch what structure does that "new creative" never will.

— Mike Nikolaou
The Obsidian Co.`,
	},
}

// RenderWelcome produces the welcome email for a vertical. Rendering is pure:
// a missing first name falls back to "there", never to an empty placeholder.
func RenderWelcome(verticalID string, data WelcomeEmailData) (Message, error) {
	tmpl, ok := welcomeTemplates[verticalID]
	if !ok {
		return Message{}, fmt.Errorf("no welcome template for vertical %q", verticalID)
	}

	if strings.TrimSpace(data.FirstName) == "" {
		data.FirstName = "there"
	}

	ht, err := htmltemplate.New(verticalID + "-html").Parse(tmpl.html)
	if err != nil {
		return Message{}, fmt.Errorf("parse html template: %w", err)
	}
	var htmlBody bytes.Buffer
	if err := ht.Execute(&htmlBody, data); err != nil {
		return Message{}, fmt.Errorf("render html template: %w", err)
	}

	tt, err := texttemplate.New(verticalID + "-text").Parse(tmpl.text)
	if err != nil {
		return Message{}, fmt.Errorf("parse text template: %w", err)
	}
	var textBody bytes.Buffer
	if err := tt.Execute(&textBody, data); err != nil {
		return Message{}, fmt.Errorf("render text template: %w", err)
	}

	return Message{
		Subject: tmpl.subject,
		HTML:    htmlBody.String(),
		Text:    textBody.String(),
	}, nil
}
