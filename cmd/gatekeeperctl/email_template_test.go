package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"
)

type fakeTemplateClient struct {
	created []*ses.CreateTemplateInput
	deleted []*ses.DeleteTemplateInput
	err     error
}

func (c *fakeTemplateClient) CreateTemplate(
	ctx context.Context,
	params *ses.CreateTemplateInput,
	optFns ...func(*ses.Options),
) (*ses.CreateTemplateOutput, error) {
	c.created = append(c.created, params)
	return &ses.CreateTemplateOutput{}, c.err
}

func (c *fakeTemplateClient) DeleteTemplate(
	ctx context.Context,
	params *ses.DeleteTemplateInput,
	optFns ...func(*ses.Options),
) (*ses.DeleteTemplateOutput, error) {
	c.deleted = append(c.deleted, params)
	return &ses.DeleteTemplateOutput{}, c.err
}

func execute(client *fakeTemplateClient, args ...string) (string, error) {
	cmd := NewEmailTemplateCmd(func(ctx context.Context) (templateClient, string, error) {
		return client, "password-reset", nil
	})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCreateTemplate(t *testing.T) {
	client := &fakeTemplateClient{}

	out, err := execute(client, "create")

	require.Nil(t, err)
	require.Contains(t, out, `Template "password-reset" created.`)
	require.Len(t, client.created, 1)
	template := client.created[0].Template
	require.Equal(t, "password-reset", *template.TemplateName)
	require.Contains(t, *template.TextPart, "{{passwordResetUrl}}")
	require.Contains(t, *template.HtmlPart, "{{passwordResetUrl}}")
}

func TestDeleteTemplate(t *testing.T) {
	client := &fakeTemplateClient{}

	_, err := execute(client, "delete")

	require.Nil(t, err)
	require.Len(t, client.deleted, 1)
	require.Equal(t, "password-reset", *client.deleted[0].TemplateName)
}

func TestTemplateClientError(t *testing.T) {
	client := &fakeTemplateClient{err: errors.New("ses is down")}

	_, err := execute(client, "create")

	require.ErrorIs(t, err, client.err)
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "version"},
		{"email-template", "create"},
		{"email-template", "delete"},
	} {
		cmd, _, err := root.Find(path)
		require.Nil(t, err)
		require.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestMigrateRequiresDatabaseURL(t *testing.T) {
	t.Setenv("POSTGRESQL_URL", "")
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "version"})

	err := root.Execute()

	require.NotNil(t, err)
}
