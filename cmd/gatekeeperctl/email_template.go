package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/caarlos0/env/v6"
	"github.com/spf13/cobra"
)

const (
	passwordResetSubject = "Reset your password"
	passwordResetText    = "Follow the link to set a new password: {{passwordResetUrl}}"
	passwordResetHtml    = `<p>Follow the link to set a new password: <a href="{{passwordResetUrl}}">{{passwordResetUrl}}</a></p>`
)

type templateClient interface {
	CreateTemplate(ctx context.Context, params *ses.CreateTemplateInput, optFns ...func(*ses.Options)) (*ses.CreateTemplateOutput, error)
	DeleteTemplate(ctx context.Context, params *ses.DeleteTemplateInput, optFns ...func(*ses.Options)) (*ses.DeleteTemplateOutput, error)
}

type templateConfig struct {
	AwsRegion                     string `env:"AWS_REGION,required"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY,required"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE,required"`
}

func newSESTemplateClient(ctx context.Context) (templateClient, string, error) {
	cfg := templateConfig{}
	if err := env.Parse(&cfg); err != nil {
		return nil, "", fmt.Errorf("could not parse config: %w", err)
	}
	awsCfg, err := awsConfig.LoadDefaultConfig(
		ctx,
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AwsAccessKey, cfg.AwsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, "", err
	}
	return ses.NewFromConfig(awsCfg), cfg.AwsEmailPasswordResetTemplate, nil
}

// NewEmailTemplateCmd manages the SES template used for password reset emails.
// newClient returns the client and the template name.
func NewEmailTemplateCmd(newClient func(ctx context.Context) (templateClient, string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email-template",
		Short: "Manage the password reset email template",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the password reset email template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, name, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			_, err = client.CreateTemplate(cmd.Context(), &ses.CreateTemplateInput{
				Template: &types.Template{
					TemplateName: aws.String(name),
					SubjectPart:  aws.String(passwordResetSubject),
					TextPart:     aws.String(passwordResetText),
					HtmlPart:     aws.String(passwordResetHtml),
				},
			})
			if err != nil {
				return fmt.Errorf("could not create template %q: %w", name, err)
			}
			cmd.Printf("Template %q created.\n", name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Delete the password reset email template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, name, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			_, err = client.DeleteTemplate(cmd.Context(), &ses.DeleteTemplateInput{TemplateName: aws.String(name)})
			if err != nil {
				return fmt.Errorf("could not delete template %q: %w", name, err)
			}
			cmd.Printf("Template %q deleted.\n", name)
			return nil
		},
	})

	return cmd
}
