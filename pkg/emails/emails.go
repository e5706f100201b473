package emails

import (
	"bytes"
	"embed"
	"fmt"
	htmlTmpl "html/template"
	txtTmpl "text/template"

	"github.com/devfoliohq/devfolio-api/pkg/util"
	gomail "gopkg.in/mail.v2"
)

var emailSubjects = map[string]string{
	"welcome": "Welcome aboard",
}

type EmailTmplVars struct {
	PlatformName     string
	PlatformFrontend string

	FromName    string
	FromAddress string

	Subject   string
	ToName    string
	ToAddress string
}

//go:embed templates/*
var templates embed.FS

func SendEmail(tmplName, toName, toAddress string) error {
	if util.Config.Mail == nil {
		return nil
	}

	vars := EmailTmplVars{
		PlatformName:     util.Config.Mail.PlatformName,
		PlatformFrontend: util.Config.Mail.PlatformFrontend,

		FromName:    util.Config.Mail.FromName,
		FromAddress: util.Config.Mail.FromAddress,

		Subject:   emailSubjects[tmplName],
		ToName:    toName,
		ToAddress: toAddress,
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", vars.FromName, vars.FromAddress))
	m.SetHeader("To", fmt.Sprintf("%s <%s>", vars.ToName, vars.ToAddress))
	m.SetHeader("Subject", vars.Subject)

	var txtTmplBuf, htmlTmplBuf bytes.Buffer

	tt, err := txtTmpl.ParseFS(templates, "templates/base.txt", fmt.Sprintf("templates/%s.txt", tmplName))
	if err != nil {
		return err
	}
	if err := tt.Execute(&txtTmplBuf, &vars); err != nil {
		return err
	}

	ht, err := htmlTmpl.ParseFS(templates, "templates/base.html", fmt.Sprintf("templates/%s.html", tmplName))
	if err != nil {
		return err
	}
	if err := ht.Execute(&htmlTmplBuf, &vars); err != nil {
		return err
	}

	m.SetBody("text/plain", txtTmplBuf.String())
	m.AddAlternative("text/html", htmlTmplBuf.String())

	return gomail.NewDialer(
		util.Config.Mail.EmailSMTPHost,
		util.Config.Mail.EmailSMTPPort,
		util.Config.Mail.EmailSMTPUsername,
		util.Config.Mail.EmailSMTPPassword,
	).DialAndSend(m)
}

func SendWelcomeEmail(name, email string) error {
	return SendEmail("welcome", name, email)
}
