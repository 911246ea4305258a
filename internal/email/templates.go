package email

import (
	"bytes"
	"fmt"
	"html/template"
)

var companyApprovedTmpl = template.Must(template.New("company_approved").Parse(`
<h2>Bienvenido a Inakat, {{.CompanyName}}</h2>
<p>Tu registro de empresa fue aprobado. Ya puedes iniciar sesión y publicar vacantes.</p>
<p><strong>Usuario:</strong> {{.LoginEmail}}<br>
<strong>Contraseña temporal:</strong> {{.TempPassword}}</p>
<p>Por seguridad, cambia tu contraseña después del primer inicio de sesión.</p>
`))

var companyRejectedTmpl = template.Must(template.New("company_rejected").Parse(`
<h2>Registro de empresa</h2>
<p>Lamentamos informarte que la solicitud de registro de <strong>{{.CompanyName}}</strong> no fue aprobada.</p>
{{if .Reason}}<p>Motivo: {{.Reason}}</p>{{end}}
<p>Puedes corregir la información y enviar una nueva solicitud.</p>
`))

func renderCompanyApproved(companyName, loginEmail, tempPassword string) (string, error) {
	var buf bytes.Buffer
	err := companyApprovedTmpl.Execute(&buf, map[string]string{
		"CompanyName":  companyName,
		"LoginEmail":   loginEmail,
		"TempPassword": tempPassword,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render approval email: %w", err)
	}
	return buf.String(), nil
}

func renderCompanyRejected(companyName, reason string) (string, error) {
	var buf bytes.Buffer
	err := companyRejectedTmpl.Execute(&buf, map[string]string{
		"CompanyName": companyName,
		"Reason":      reason,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render rejection email: %w", err)
	}
	return buf.String(), nil
}
