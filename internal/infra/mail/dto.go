package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OutreachEmailData struct {
	Name    string
	Content string
}
