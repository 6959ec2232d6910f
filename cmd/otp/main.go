// Command otp is a small front end over the otpkit packages: secret
// generation, HOTP/TOTP code calculation, and enrollment URI / QR rendering.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/otpkit/otpkit/pkg/oath"
	"github.com/otpkit/otpkit/pkg/otpauth"
	"github.com/otpkit/otpkit/pkg/secrets"
)

func main() {
	app := &cli.App{
		Name:  "otp",
		Usage: "generate and provision one-time passwords",
		Commands: []*cli.Command{
			keygenCommand(),
			codeCommand(),
			hotpCommand(),
			uriCommand(),
			qrCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func keyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "secret", Usage: "shared secret, base32 encoded"},
		&cli.StringFlag{Name: "hex", Usage: "shared secret, hex encoded"},
		&cli.IntFlag{Name: "digits", Value: oath.DefaultOutputLen, Usage: "number of code digits"},
		&cli.StringFlag{Name: "algo", Value: "SHA1", Usage: "hash function: SHA1, SHA256 or SHA512"},
	}
}

func hashFlag(ctx *cli.Context) (oath.HashFunction, error) {
	hash, ok := oath.ParseHashFunction(ctx.String("algo"))
	if !ok {
		return hash, fmt.Errorf("unknown hash function %q", ctx.String("algo"))
	}
	return hash, nil
}

func applyKeyFlags[B interface {
	Base32Key(string) B
	HexKey(string) B
}](ctx *cli.Context, builder B) (B, error) {
	secret := ctx.String("secret")
	hexKey := ctx.String("hex")
	switch {
	case secret != "" && hexKey != "":
		return builder, errors.New("use either --secret or --hex, not both")
	case hexKey != "":
		return builder.HexKey(hexKey), nil
	case secret != "":
		return builder.Base32Key(secret), nil
	default:
		return builder, errors.New("a shared secret is required (--secret or --hex)")
	}
}

func keygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "generate a new shared secret",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "enc-key", Usage: "also print a fresh OTP_ENCRYPTION_KEY value"},
		},
		Action: func(ctx *cli.Context) error {
			secret, err := otpauth.GenerateSecretKey()
			if err != nil {
				return err
			}
			fmt.Println(secret)

			if ctx.Bool("enc-key") {
				encoded, err := secrets.GenerateEncodedKey()
				if err != nil {
					return err
				}
				fmt.Printf("OTP_ENCRYPTION_KEY=%s\n", encoded)
			}
			return nil
		},
	}
}

func codeCommand() *cli.Command {
	return &cli.Command{
		Name:  "code",
		Usage: "print the current time-based code for a secret",
		Flags: append(keyFlags(),
			&cli.UintFlag{Name: "period", Value: oath.DefaultPeriod, Usage: "time step in seconds"},
		),
		Action: func(ctx *cli.Context) error {
			hash, err := hashFlag(ctx)
			if err != nil {
				return err
			}
			builder, err := applyKeyFlags(ctx, oath.NewTOTPBuilder())
			if err != nil {
				return err
			}
			gen, err := builder.
				OutputLen(ctx.Int("digits")).
				HashFunction(hash).
				Period(uint32(ctx.Uint("period"))).
				Finalize()
			if err != nil {
				return err
			}
			fmt.Println(gen.Generate())
			return nil
		},
	}
}

func hotpCommand() *cli.Command {
	return &cli.Command{
		Name:  "hotp",
		Usage: "print the counter-based code for a secret",
		Flags: append(keyFlags(),
			&cli.Uint64Flag{Name: "counter", Required: true, Usage: "counter value"},
		),
		Action: func(ctx *cli.Context) error {
			hash, err := hashFlag(ctx)
			if err != nil {
				return err
			}
			builder, err := applyKeyFlags(ctx, oath.NewHOTPBuilder())
			if err != nil {
				return err
			}
			gen, err := builder.
				OutputLen(ctx.Int("digits")).
				HashFunction(hash).
				Finalize()
			if err != nil {
				return err
			}
			fmt.Println(gen.Generate(ctx.Uint64("counter")))
			return nil
		},
	}
}

func enrollmentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "secret", Required: true, Usage: "shared secret, base32 encoded"},
		&cli.StringFlag{Name: "account", Required: true, Usage: "account name, e.g. an email address"},
		&cli.StringFlag{Name: "issuer", Required: true, Usage: "issuer shown in the authenticator app"},
		&cli.StringFlag{Name: "algo", Value: "SHA1", Usage: "hash function: SHA1, SHA256 or SHA512"},
		&cli.IntFlag{Name: "digits", Value: oath.DefaultOutputLen, Usage: "number of code digits"},
		&cli.IntFlag{Name: "period", Value: oath.DefaultPeriod, Usage: "time step in seconds"},
	}
}

func enrollmentParams(ctx *cli.Context) (otpauth.Params, error) {
	hash, err := hashFlag(ctx)
	if err != nil {
		return otpauth.Params{}, err
	}
	return otpauth.Params{
		Secret:      ctx.String("secret"),
		AccountName: ctx.String("account"),
		Issuer:      ctx.String("issuer"),
		Algorithm:   hash,
		Digits:      ctx.Int("digits"),
		Period:      ctx.Int("period"),
	}, nil
}

func uriCommand() *cli.Command {
	return &cli.Command{
		Name:  "uri",
		Usage: "print the otpauth:// enrollment URI for a secret",
		Flags: enrollmentFlags(),
		Action: func(ctx *cli.Context) error {
			params, err := enrollmentParams(ctx)
			if err != nil {
				return err
			}
			uri, err := otpauth.URI(params)
			if err != nil {
				return err
			}
			fmt.Println(uri)
			return nil
		},
	}
}

func qrCommand() *cli.Command {
	return &cli.Command{
		Name:  "qr",
		Usage: "write the enrollment QR code for a secret as a PNG file",
		Flags: append(enrollmentFlags(),
			&cli.StringFlag{Name: "out", Value: "otp.png", Usage: "output file"},
			&cli.IntFlag{Name: "size", Value: 256, Usage: "image size in pixels"},
		),
		Action: func(ctx *cli.Context) error {
			params, err := enrollmentParams(ctx)
			if err != nil {
				return err
			}
			png, err := otpauth.QRCode(params, ctx.Int("size"))
			if err != nil {
				return err
			}
			if err := os.WriteFile(ctx.String("out"), png, 0o600); err != nil {
				return err
			}
			log.Printf("wrote %s", ctx.String("out"))
			return nil
		},
	}
}
