package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
)

func newBlogsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blogs",
		Short: "Manage blog posts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List blog posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			blogs, err := client.Blogs(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tCREATED")
			for _, b := range blogs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.CreatedAt)
			}
			return w.Flush()
		},
	}

	var params api.BlogParams
	var imagePath, videoPath string
	create := &cobra.Command{
		Use:   "create",
		Short: "Publish a blog post (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			params.Image, err = openOptionalUpload(imagePath)
			if err != nil {
				return err
			}
			params.Video, err = openOptionalUpload(videoPath)
			if err != nil {
				return err
			}

			b, err := client.CreateBlog(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("published blog post %d\n", b.ID)
			return nil
		},
	}
	create.Flags().StringVar(&params.Title, "title", "", "post title")
	create.Flags().StringVar(&params.Content, "content", "", "post body")
	create.Flags().StringVar(&params.Author, "author", "", "author name")
	create.Flags().StringVar(&imagePath, "image", "", "path to a cover image (max 2MB)")
	create.Flags().StringVar(&videoPath, "video", "", "path to a video (max 10MB)")

	var upd api.BlogParams
	var updImagePath, updVideoPath string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a blog post (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			current, err := client.GetBlog(cmd.Context(), id)
			if err != nil {
				return err
			}

			merged := api.BlogParams{Title: current.Title, Content: current.Content, Author: current.Author}
			if cmd.Flags().Changed("title") {
				merged.Title = upd.Title
			}
			if cmd.Flags().Changed("content") {
				merged.Content = upd.Content
			}
			if cmd.Flags().Changed("author") {
				merged.Author = upd.Author
			}
			merged.Image, err = openOptionalUpload(updImagePath)
			if err != nil {
				return err
			}
			merged.Video, err = openOptionalUpload(updVideoPath)
			if err != nil {
				return err
			}

			b, err := client.UpdateBlog(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Printf("updated blog post %d\n", b.ID)
			return nil
		},
	}
	update.Flags().StringVar(&upd.Title, "title", "", "post title")
	update.Flags().StringVar(&upd.Content, "content", "", "post body")
	update.Flags().StringVar(&upd.Author, "author", "", "author name")
	update.Flags().StringVar(&updImagePath, "image", "", "path to a new cover image (max 2MB)")
	update.Flags().StringVar(&updVideoPath, "video", "", "path to a new video (max 10MB)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blog post (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			if err := client.DeleteBlog(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted blog post %d\n", id)
			return nil
		},
	}

	comments := &cobra.Command{
		Use:   "comments <id>",
		Short: "List the comments of a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.Client()
			if err != nil {
				return err
			}
			list, err := client.BlogComments(cmd.Context(), id)
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tCOMMENT")
			for _, c := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Content)
			}
			return w.Flush()
		},
	}

	var comment api.BlogCommentParams
	addComment := &cobra.Command{
		Use:   "comment <id>",
		Short: "Comment on a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.Client()
			if err != nil {
				return err
			}
			c, err := client.AddBlogComment(cmd.Context(), id, comment)
			if err != nil {
				return err
			}
			fmt.Printf("comment %d posted\n", c.ID)
			return nil
		},
	}
	addComment.Flags().StringVar(&comment.Name, "name", "", "your name")
	addComment.Flags().StringVar(&comment.Content, "content", "", "comment text")

	delComment := &cobra.Command{
		Use:   "delete-comment <blog-id> <comment-id>",
		Short: "Delete a comment (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			blogID, err := parseID(args[0])
			if err != nil {
				return err
			}
			commentID, err := parseID(args[1])
			if err != nil {
				return err
			}
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			if err := client.DeleteBlogComment(cmd.Context(), blogID, commentID); err != nil {
				return err
			}
			fmt.Printf("deleted comment %d\n", commentID)
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del, comments, addComment, delComment)
	return cmd
}
