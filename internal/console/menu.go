package console

import (
	"context"
	"fmt"

	"github.com/charityfund/charity/internal/store"
)

type entry struct {
	label string
	run   func(ctx context.Context) error
}

// menu lists the operations in selector order.
func (c *Console) menu() []entry {
	return []entry{
		{"Get all donors with donations", c.listDonors},
		{"Get all donations with donors and projects", c.listDonations},
		{"Get all projects with donations and volunteer projects", c.listProjects},
		{"Get all volunteers with projects", c.listVolunteers},
		{"Add a donor", c.addDonor},
		{"Add a donation", c.addDonation},
		{"Add a project", c.addProject},
		{"Add a volunteer", c.addVolunteer},
		{"Add a volunteer project", c.addVolunteerProject},
		{"Aggregate donations", c.Sum},
		{"Update a donor", c.updateDonor},
		{"Update a donation", c.updateDonation},
		{"Update a project", c.updateProject},
		{"Update a volunteer", c.updateVolunteer},
		{"Delete a donor", c.deleteDonor},
		{"Delete a donation", c.deleteDonation},
		{"Delete a project", c.deleteProject},
		{"Delete a volunteer", c.deleteVolunteer},
		{"Get all volunteer projects", c.listVolunteerProjects},
		{"Update a volunteer project", c.updateVolunteerProject},
		{"Delete a volunteer project", c.deleteVolunteerProject},
		{"Show project totals", c.projectTotals},
	}
}

func (c *Console) listDonors(ctx context.Context) error {
	donors, err := c.store.ListDonors(ctx)
	if err != nil {
		return err
	}
	c.renderDonors(donors)
	return nil
}

func (c *Console) listDonations(ctx context.Context) error {
	donations, err := c.store.ListDonations(ctx)
	if err != nil {
		return err
	}
	c.renderDonations(donations)
	return nil
}

func (c *Console) listProjects(ctx context.Context) error {
	projects, err := c.store.ListProjects(ctx)
	if err != nil {
		return err
	}
	c.renderProjects(projects)
	return nil
}

func (c *Console) listVolunteers(ctx context.Context) error {
	volunteers, err := c.store.ListVolunteers(ctx)
	if err != nil {
		return err
	}
	c.renderVolunteers(volunteers)
	return nil
}

func (c *Console) listVolunteerProjects(ctx context.Context) error {
	links, err := c.store.ListVolunteerProjects(ctx)
	if err != nil {
		return err
	}
	c.renderVolunteerProjects(links)
	return nil
}

func (c *Console) addDonor(ctx context.Context) error {
	in, err := c.askContact("Donor")
	if err != nil {
		return err
	}

	donor, err := c.store.CreateDonor(ctx, in)
	if err != nil {
		return err
	}

	c.printf("Donor added successfully! (ID: %d)\n", donor.ID)
	return nil
}

func (c *Console) addDonation(ctx context.Context) error {
	var in store.DonationInput
	var err error

	if in.Amount, err = c.askMoney("Donation Amount", "amount"); err != nil {
		return err
	}
	if in.DonorID, err = c.askID("Donor ID", "donor id"); err != nil {
		return err
	}
	if in.ProjectID, err = c.askID("Project ID", "project id"); err != nil {
		return err
	}

	donation, err := c.store.CreateDonation(ctx, in)
	if err != nil {
		return err
	}

	c.printf("Donation added successfully! (ID: %d)\n", donation.ID)
	return nil
}

func (c *Console) addProject(ctx context.Context) error {
	var in store.ProjectInput
	var err error

	if in.Name, err = c.ask("Project Name"); err != nil {
		return err
	}
	if in.Description, err = c.ask("Project Description"); err != nil {
		return err
	}
	if in.GoalAmount, err = c.askMoney("Goal Amount", "goal amount"); err != nil {
		return err
	}

	project, err := c.store.CreateProject(ctx, in)
	if err != nil {
		return err
	}

	c.printf("Project added successfully! (ID: %d)\n", project.ID)
	return nil
}

func (c *Console) addVolunteer(ctx context.Context) error {
	in, err := c.askContact("Volunteer")
	if err != nil {
		return err
	}

	volunteer, err := c.store.CreateVolunteer(ctx, in)
	if err != nil {
		return err
	}

	c.printf("Volunteer added successfully! (ID: %d)\n", volunteer.ID)
	return nil
}

func (c *Console) addVolunteerProject(ctx context.Context) error {
	var in store.VolunteerProjectInput
	var err error

	if in.VolunteerID, err = c.askID("Volunteer ID", "volunteer id"); err != nil {
		return err
	}
	if in.ProjectID, err = c.askID("Project ID", "project id"); err != nil {
		return err
	}
	if in.HoursWorked, err = c.askHours("Hours Worked", "hours worked"); err != nil {
		return err
	}

	link, err := c.store.CreateVolunteerProject(ctx, in)
	if err != nil {
		return err
	}

	c.printf("Volunteer Project added successfully! (ID: %d)\n", link.ID)
	return nil
}

// List prints one collection the way the menu does.
func (c *Console) List(ctx context.Context, kind store.Kind) error {
	switch kind {
	case store.KindDonor:
		return c.listDonors(ctx)
	case store.KindDonation:
		return c.listDonations(ctx)
	case store.KindProject:
		return c.listProjects(ctx)
	case store.KindVolunteer:
		return c.listVolunteers(ctx)
	case store.KindVolunteerProject:
		return c.listVolunteerProjects(ctx)
	}
	return fmt.Errorf("%w: unknown kind %q", store.ErrValidation, string(kind))
}

// Sum prints the total of all donations.
func (c *Console) Sum(ctx context.Context) error {
	total, err := c.store.SumDonations(ctx)
	if err != nil {
		return err
	}

	c.printf("Total Donations: %s\n", formatMoney(total))
	return nil
}

func (c *Console) projectTotals(ctx context.Context) error {
	progress, err := c.store.ProjectProgress(ctx)
	if err != nil {
		return err
	}
	c.renderProgress(progress)
	return nil
}

// The update operations look the record up before prompting so a wrong id
// is reported without asking for every field first.

func (c *Console) updateDonor(ctx context.Context) error {
	id, err := c.askID("Donor ID to update", "donor id")
	if err != nil {
		return err
	}
	if err := c.store.Exists(ctx, store.KindDonor, id); err != nil {
		return err
	}

	patch, err := c.askContactPatch()
	if err != nil {
		return err
	}

	if _, err := c.store.UpdateDonor(ctx, id, patch); err != nil {
		return err
	}

	c.println("Donor updated successfully!")
	return nil
}

func (c *Console) updateDonation(ctx context.Context) error {
	id, err := c.askID("Donation ID to update", "donation id")
	if err != nil {
		return err
	}
	if err := c.store.Exists(ctx, store.KindDonation, id); err != nil {
		return err
	}

	var patch store.DonationPatch

	if patch.Amount, err = c.askOptionalMoney("Amount", "amount"); err != nil {
		return err
	}
	if patch.DonorID, err = c.askOptionalID("Donor ID", "donor id"); err != nil {
		return err
	}
	if patch.ProjectID, err = c.askOptionalID("Project ID", "project id"); err != nil {
		return err
	}

	if _, err := c.store.UpdateDonation(ctx, id, patch); err != nil {
		return err
	}

	c.println("Donation updated successfully!")
	return nil
}

func (c *Console) updateProject(ctx context.Context) error {
	id, err := c.askID("Project ID to update", "project id")
	if err != nil {
		return err
	}
	if err := c.store.Exists(ctx, store.KindProject, id); err != nil {
		return err
	}

	var patch store.ProjectPatch

	if patch.Name, err = c.askText("Name"); err != nil {
		return err
	}
	if patch.Description, err = c.askText("Description"); err != nil {
		return err
	}
	if patch.GoalAmount, err = c.askOptionalMoney("Goal Amount", "goal amount"); err != nil {
		return err
	}

	if _, err := c.store.UpdateProject(ctx, id, patch); err != nil {
		return err
	}

	c.println("Project updated successfully!")
	return nil
}

func (c *Console) updateVolunteer(ctx context.Context) error {
	id, err := c.askID("Volunteer ID to update", "volunteer id")
	if err != nil {
		return err
	}
	if err := c.store.Exists(ctx, store.KindVolunteer, id); err != nil {
		return err
	}

	patch, err := c.askContactPatch()
	if err != nil {
		return err
	}

	if _, err := c.store.UpdateVolunteer(ctx, id, patch); err != nil {
		return err
	}

	c.println("Volunteer updated successfully!")
	return nil
}

func (c *Console) updateVolunteerProject(ctx context.Context) error {
	id, err := c.askID("Volunteer Project ID to update", "volunteer project id")
	if err != nil {
		return err
	}
	if err := c.store.Exists(ctx, store.KindVolunteerProject, id); err != nil {
		return err
	}

	var patch store.VolunteerProjectPatch

	if patch.VolunteerID, err = c.askOptionalID("Volunteer ID", "volunteer id"); err != nil {
		return err
	}
	if patch.ProjectID, err = c.askOptionalID("Project ID", "project id"); err != nil {
		return err
	}
	if patch.HoursWorked, err = c.askOptionalHours("Hours Worked", "hours worked"); err != nil {
		return err
	}

	if _, err := c.store.UpdateVolunteerProject(ctx, id, patch); err != nil {
		return err
	}

	c.println("Volunteer Project updated successfully!")
	return nil
}

func (c *Console) deleteDonor(ctx context.Context) error {
	return c.deleteByID(ctx, store.KindDonor, c.store.DeleteDonor)
}

func (c *Console) deleteDonation(ctx context.Context) error {
	return c.deleteByID(ctx, store.KindDonation, c.store.DeleteDonation)
}

func (c *Console) deleteProject(ctx context.Context) error {
	return c.deleteByID(ctx, store.KindProject, c.store.DeleteProject)
}

func (c *Console) deleteVolunteer(ctx context.Context) error {
	return c.deleteByID(ctx, store.KindVolunteer, c.store.DeleteVolunteer)
}

func (c *Console) deleteVolunteerProject(ctx context.Context) error {
	return c.deleteByID(ctx, store.KindVolunteerProject, c.store.DeleteVolunteerProject)
}

func (c *Console) deleteByID(ctx context.Context, kind store.Kind, del func(context.Context, uint) error) error {
	id, err := c.askID(titleWords(string(kind))+" ID to delete", string(kind)+" id")
	if err != nil {
		return err
	}

	if err := del(ctx, id); err != nil {
		return err
	}

	c.printf("%s deleted successfully!\n", titleWords(string(kind)))
	return nil
}
