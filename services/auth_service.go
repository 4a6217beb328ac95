package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// GenerateVerificationCode buat kode verifikasi 6 digit
func GenerateVerificationCode() (string, error) {
	code := ""
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}
	return code, nil
}

// HashPassword hash password dengan bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// SendVerificationEmail kirim kode verifikasi akun lewat SMTP
func SendVerificationEmail(email string, code string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}

	to := []string{email}
	subject := "Subject: Kode verifikasi akun kamu\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Kode verifikasi</title>
		</head>
		<body>
			<p>Halo %s,</p>
			<p>Terima kasih sudah mendaftar. Kode verifikasi akun kamu adalah: <strong>%s</strong></p>
			<p>Kalau kamu tidak merasa mendaftar, abaikan saja email ini. Mungkin orang lain salah memasukkan alamat email.</p>
			<p>Kamu juga bisa menekan tombol berikut untuk memverifikasi akun</p>
			<p>
				<a href="%s/verify-email?token=%s" style="display: inline-block; padding: 10px 20px; background-color: #1a73e8; color: white; text-decoration: none; border-radius: 5px;">
					Verifikasi email
				</a>
			</p>
			<p>Terima kasih,<br>Tim BukuBekas</p>
		</body>
		</html>
	`, email, code, os.Getenv("APP_BASE_URL"), code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
