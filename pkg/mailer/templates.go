package mailer

// Process-lifetime templates, one per form type. Placeholders use the
// {{key}} convention consumed by Template.Render.

const emailStyles = `
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a3c5e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a3c5e; margin-top: 10px; }
        .meta { color: #888; font-size: 12px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }`

// ContactTemplate renders general contact form inquiries.
var ContactTemplate = Template{
	HTML: `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Inquiry</title>
    <style>` + emailStyles + `
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Inquiry</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{name}} ({{email}})</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{message}}</div>
            </div>
            <div class="field meta">
                Received {{timestamp}} from {{ip}} ({{userAgent}})
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Meridian Advisory contact form.</p>
            <p>To reply, send an email to: {{email}}</p>
        </div>
    </div>
</body>
</html>`,
	Text: `New Contact Inquiry

From: {{name}} ({{email}})

Message:
{{message}}

Received {{timestamp}} from {{ip}} ({{userAgent}})
`,
}

// ConsultationTemplate renders consultation booking requests.
var ConsultationTemplate = Template{
	HTML: `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Consultation Request</title>
    <style>` + emailStyles + `
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Consultation Request</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{name}} ({{email}})</div>
            </div>
            <div class="field">
                <div class="label">Company:</div>
                <div class="value">{{company}} &mdash; {{industry}}, {{companySize}} employees</div>
            </div>
            <div class="field">
                <div class="label">Consultation Type:</div>
                <div class="value">{{consultationType}}</div>
            </div>
            <div class="field">
                <div class="label">Preferred Date:</div>
                <div class="value">{{preferredDate}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{message}}</div>
            </div>
            <div class="field meta">
                Received {{timestamp}} from {{ip}} ({{userAgent}})
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Meridian Advisory consultation booking form.</p>
            <p>To reply, send an email to: {{email}}</p>
        </div>
    </div>
</body>
</html>`,
	Text: `New Consultation Request

From: {{name}} ({{email}})
Company: {{company}} - {{industry}}, {{companySize}} employees
Consultation Type: {{consultationType}}
Preferred Date: {{preferredDate}}

Message:
{{message}}

Received {{timestamp}} from {{ip}} ({{userAgent}})
`,
}

// ApplicationTemplate renders job applications; the resume is attached
// separately by the dispatcher.
var ApplicationTemplate = Template{
	HTML: `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Job Application</title>
    <style>` + emailStyles + `
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Job Application</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Applicant:</div>
                <div class="value">{{name}} ({{email}})</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{phone}}</div>
            </div>
            <div class="field">
                <div class="label">Cover Message:</div>
                <div class="message-box">{{message}}</div>
            </div>
            <div class="field meta">
                Resume attached as PDF. Received {{timestamp}} from {{ip}} ({{userAgent}})
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Meridian Advisory careers page.</p>
            <p>To reply, send an email to: {{email}}</p>
        </div>
    </div>
</body>
</html>`,
	Text: `New Job Application

Applicant: {{name}} ({{email}})
Phone: {{phone}}

Cover Message:
{{message}}

Resume attached as PDF. Received {{timestamp}} from {{ip}} ({{userAgent}})
`,
}
