// Package vsts provides a Go client SDK for Visual Studio Team Services,
// covering team projects, work items, stored queries, Git repositories and
// code policies over the REST API.
//
// Calls are addressed through an immutable Session carrying the account,
// credential pair and routing configuration. Requests authenticate with
// Basic credentials, typically a user name and personal access token.
//
// Basic usage:
//
//	session := vsts.NewSession("fabrikam", "bob@contoso.com", "personal-access-token")
//	client, err := vsts.New(session)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List team projects
//	projects, err := client.ListProjects(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a work item
//	item, err := client.CreateWorkItem(ctx, "Alpha", "Task", []vsts.Field{
//	    {Name: "System.Title", Value: "Fix the build"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Created work item", item.ID)
//
// The service applies many effects asynchronously: project creation and
// deletion return before the change is visible. Use WithWait or WaitForProject
// to block until the outcome can be observed.
package vsts
